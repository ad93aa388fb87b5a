package document

// slipTemplate reproduces the TransportKART loading slip letterhead: header
// with logo, registration and tax identifiers, contact block, customer and
// slip info, covering letter, the route/vehicle/material/freight table,
// bank and payment boxes, terms and the signature block. Styling is fully
// inline so the document has no external asset dependencies and fits one
// A4 page.
const slipTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        @page {
            size: A4;
            margin: 0.3in;
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: Arial, sans-serif;
            font-size: 11px;
            line-height: 1.2;
            color: #000;
        }

        .loading-slip-header {
            background-color: #f0f0f0;
            padding: 8px;
            text-align: center;
            font-weight: bold;
            font-size: 14px;
            margin-bottom: 15px;
            border: 1px solid #ccc;
        }

        .header-section {
            display: flex;
            align-items: flex-start;
            justify-content: space-between;
            margin-bottom: 20px;
            border-bottom: 2px solid #000;
            padding-bottom: 15px;
        }

        .logo-container {
            width: 80px;
            text-align: center;
        }

        .logo-img {
            width: 60px;
            height: 60px;
            background: #4CAF50;
            border-radius: 5px;
            display: flex;
            align-items: center;
            justify-content: center;
            color: white;
            font-weight: bold;
            font-size: 16px;
            margin-bottom: 5px;
        }

        .logo-text {
            font-size: 8px;
            font-weight: bold;
            color: #4CAF50;
        }

        .company-details {
            flex: 1;
            text-align: center;
            padding: 0 20px;
        }

        .brand-line {
            color: #d32f2f;
            font-weight: bold;
            font-size: 12px;
            margin-bottom: 2px;
        }

        .company-name {
            font-size: 20px;
            font-weight: bold;
            color: #4CAF50;
            margin-bottom: 8px;
        }

        .reg-office {
            font-size: 9px;
            margin-bottom: 3px;
        }

        .tax-details {
            font-size: 9px;
            font-weight: bold;
        }

        .contact-info {
            width: 200px;
            text-align: right;
            font-size: 9px;
            line-height: 1.3;
        }

        .contact-row {
            margin-bottom: 2px;
        }

        .customer-loading-row {
            display: flex;
            justify-content: space-between;
            margin-bottom: 20px;
            border-bottom: 1px solid #000;
            padding-bottom: 15px;
        }

        .customer-section, .loading-section {
            width: 48%;
        }

        .info-line {
            margin-bottom: 8px;
            display: flex;
        }

        .info-label {
            font-weight: bold;
            width: 120px;
            margin-right: 10px;
        }

        .info-value {
            flex: 1;
            border-bottom: 1px solid #000;
            padding-bottom: 2px;
        }

        .letter-content {
            margin: 20px 0;
            text-align: justify;
            line-height: 1.4;
        }

        .greeting {
            font-weight: bold;
            margin-bottom: 10px;
        }

        .letter-text {
            margin-bottom: 10px;
        }

        .loading-date {
            text-decoration: underline;
            font-weight: bold;
        }

        .details-table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
            border: 2px solid #000;
        }

        .details-table th {
            background-color: #f0f0f0;
            border: 1px solid #000;
            padding: 8px 4px;
            text-align: center;
            font-weight: bold;
            font-size: 10px;
        }

        .details-table td {
            border: 1px solid #000;
            padding: 8px 4px;
            text-align: center;
            font-size: 10px;
        }

        .payment-section {
            display: flex;
            gap: 20px;
            margin: 25px 0;
        }

        .bank-box, .payment-box {
            flex: 1;
            border: 2px solid #000;
            padding: 12px;
        }

        .box-title {
            font-weight: bold;
            text-align: center;
            margin-bottom: 10px;
            text-decoration: underline;
            font-size: 11px;
        }

        .bank-row, .payment-row {
            display: flex;
            justify-content: space-between;
            margin-bottom: 6px;
            font-size: 10px;
        }

        .bank-label {
            font-weight: bold;
            width: 100px;
        }

        .payment-row.balance {
            font-weight: bold;
            border-top: 1px solid #000;
            padding-top: 6px;
            margin-top: 8px;
        }

        .terms-section {
            margin: 25px 0;
        }

        .terms-title {
            font-weight: bold;
            text-decoration: underline;
            margin-bottom: 10px;
            font-size: 11px;
        }

        .terms-list {
            font-size: 9px;
            line-height: 1.3;
        }

        .terms-list ol {
            padding-left: 15px;
        }

        .terms-list li {
            margin-bottom: 4px;
        }

        .signature-section {
            margin-top: 30px;
            text-align: right;
        }

        .signature-box {
            display: inline-block;
            border: 2px solid #000;
            padding: 20px;
            text-align: center;
            width: 180px;
        }

        .signature-title {
            font-weight: bold;
            font-size: 12px;
            margin-bottom: 5px;
        }

        .signature-company {
            font-weight: bold;
            font-size: 11px;
            margin-bottom: 15px;
        }

        .signature-authority {
            font-size: 10px;
            font-weight: bold;
        }
    </style>
</head>
<body>
    <div class="loading-slip-header">Loading Slip</div>

    <div class="header-section">
        <div class="logo-container">
            <div class="logo-img">&#128667;</div>
            <div class="logo-text">{{.Letterhead.CompanyName}}</div>
        </div>

        <div class="company-details">
            <div class="brand-line">{{.Letterhead.Brand}}</div>
            <div class="company-name">{{.Letterhead.CompanyName}}</div>
            <div class="reg-office">{{.Letterhead.RegOffice}}</div>
            <div class="tax-details">GSTIN : {{.Letterhead.GSTIN}} &nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp; PAN No. {{.Letterhead.PAN}}</div>
        </div>

        <div class="contact-info">
            <div class="contact-row">{{.Letterhead.Email}}</div>
            <div class="contact-row">{{.Letterhead.Phone}}</div>
            <div class="contact-row">{{.Letterhead.Website}}</div>
        </div>
    </div>

    <div class="customer-loading-row">
        <div class="customer-section">
            <div class="info-line">
                <span class="info-label">Customer Name :</span>
                <span class="info-value">{{.CustomerName}}</span>
            </div>
            <div class="info-line">
                <span class="info-label">Address :</span>
                <span class="info-value">{{.CustomerAddress}}</span>
            </div>
        </div>

        <div class="loading-section">
            <div class="info-line">
                <span class="info-label">Loading Slip No. :</span>
                <span class="info-value">{{.LoadingSlipNo}}</span>
            </div>
            <div class="info-line">
                <span class="info-label">Loading Date :</span>
                <span class="info-value">{{.LoadingDate}}</span>
            </div>
        </div>
    </div>

    <div class="letter-content">
        <div class="greeting">Dear Sir / Madam,</div>
        <div class="letter-text">
            We are sending our truck based on our earlier discussion regarding the same. Requesting you please prepare load for the below truck on our behalf &amp; oblige. Upcoming
        </div>
        <div class="letter-text">
            loading on Dated : <span class="loading-date">{{.LoadingDate}}</span> .
        </div>
    </div>

    <table class="details-table">
        <thead>
            <tr>
                <th>Load Type</th>
                <th>From - To City</th>
                <th>Vehicle No.</th>
                <th>Driver No.</th>
                <th>Vehicle Type</th>
                <th>Material Wt</th>
                <th>Material</th>
                <th>Freight</th>
            </tr>
        </thead>
        <tbody>
            <tr>
                <td>{{.TruckType}}</td>
                <td>{{.FromCity}} - {{.ToCity}}</td>
                <td>{{.VehicleNo}}</td>
                <td>{{.DriverNumber}}</td>
                <td>{{.VehicleType}}</td>
                <td>{{.MaterialWeight}}</td>
                <td>{{.Material}}</td>
                <td>{{.Freight}}</td>
            </tr>
        </tbody>
    </table>

    <div class="payment-section">
        <div class="bank-box">
            <div class="box-title">Bank Information For Payment</div>
            <div class="bank-row">
                <span class="bank-label">Payee Name</span>
                <span>{{.Letterhead.BankPayee}}</span>
            </div>
            <div class="bank-row">
                <span class="bank-label">Account Number</span>
                <span>{{.Letterhead.BankAccount}}</span>
            </div>
            <div class="bank-row">
                <span class="bank-label">IFSC Code</span>
                <span>{{.Letterhead.BankIFSC}}</span>
            </div>
            <div class="bank-row">
                <span class="bank-label">QR ID</span>
                <span>{{.Letterhead.BankUPI}}</span>
            </div>
        </div>

        <div class="payment-box">
            <div class="box-title">Payment Details</div>
            <div class="payment-row">
                <span>Loading Detention</span>
                <span>{{.Detention}}</span>
            </div>
            <div class="payment-row">
                <span>Advance Payment</span>
                <span>{{.Advance}}</span>
            </div>
            <div class="payment-row balance">
                <span>Balance Payment</span>
                <span>{{.Balance}}</span>
            </div>
        </div>
    </div>

    <div class="terms-section">
        <div class="terms-title">Terms &amp; Conditions</div>
        <div class="terms-list">
            <ol>
                <li>GST will be Paid By Consigner / Consignee</li>
                <li>GST exempted is given on hire to GOODS TRANSPORT Company</li>
                <li>Any Type Of Damage / Shortage Will Not Liability Of {{.Letterhead.Brand}}</li>
                <li>If Material Will Theft Then No Any Deduction Will Be Accepted. Settle Loss With Insurance Company.</li>
                <li>Any Type Of Deduction Will Be Not Accepted Without {{.Letterhead.Brand}} Approval</li>
                <li>All Dispute Subject To Our {{.Letterhead.Jurisdiction}} Jurisdiction</li>
            </ol>
        </div>
    </div>

    <div class="signature-section">
        <div class="signature-box">
            <div class="signature-title">{{.Letterhead.Brand}}</div>
            <div class="signature-company">{{.Letterhead.CompanyName}}</div>
            <div class="signature-authority">Signing Authority</div>
        </div>
    </div>
</body>
</html>
`
